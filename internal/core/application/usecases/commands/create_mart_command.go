package commands

import (
	"errors"
	"strings"

	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/domain/model/mart"
	"martdelivery/internal/pkg/errs"
	"martdelivery/internal/pkg/guard"
)

var ErrCreateMartCommandIsNotConstructed = errors.New(
	"CreateMartCommand must be created via NewCreateMartCommand constructor",
)

// CreateMartCommand registers a mart for an owner. The depot point is resolved from the address.
type CreateMartCommand struct { //nolint:recvcheck //using for validation
	martID  kernel.UUID
	ownerID kernel.UUID
	name    string
	address string

	guard guard.ConstructorGuard
}

func NewCreateMartCommand(martID, ownerID kernel.UUID, name, address string) (CreateMartCommand, error) {
	cmd := CreateMartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMartID(martID),
		cmd.setOwnerID(ownerID),
		cmd.setName(name),
		cmd.setAddress(address),
	); err != nil {
		return CreateMartCommand{}, err
	}

	return cmd, nil
}

func (c CreateMartCommand) Validate() error {
	return c.guard.Validate(ErrCreateMartCommandIsNotConstructed)
}

func (c CreateMartCommand) MartID() kernel.UUID {
	return c.martID
}

func (c CreateMartCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c CreateMartCommand) Name() string {
	return c.name
}

func (c CreateMartCommand) Address() string {
	return c.address
}

func (c *CreateMartCommand) setMartID(martID kernel.UUID) error {
	if err := martID.Validate(); err != nil {
		return err
	}
	c.martID = martID
	return nil
}

func (c *CreateMartCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	c.ownerID = ownerID
	return nil
}

func (c *CreateMartCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return mart.ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateMartCommand) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return mart.ErrAddressIsRequired
	}
	c.address = address
	return nil
}
