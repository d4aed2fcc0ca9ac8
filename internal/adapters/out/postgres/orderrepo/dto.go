// Package orderrepo provides the GORM repository for order aggregates and the DTOs
// that map them onto the orders, order_items and order_history tables.
package orderrepo

import (
	"time"

	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is a row of the orders table. Coordinates are nullable so that legacy rows
// without a delivery point can be stored; they are read back as an absent location.
type OrderDTO struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey"`
	MartID    uuid.UUID    `gorm:"type:uuid;index:idx_orders_mart_status,priority:1;not null"`
	Status    string       `gorm:"type:varchar(16);index:idx_orders_mart_status,priority:2;not null"`
	AgentID   *uuid.UUID   `gorm:"type:uuid"`
	Total     float64      `gorm:"type:numeric(12,2);not null"`
	Phone     string       `gorm:"not null"`
	Address   AddressDTO   `gorm:"embedded;embeddedPrefix:address_"`
	Lon       *float64     `gorm:"type:double precision"`
	Lat       *float64     `gorm:"type:double precision"`
	CreatedAt time.Time    `gorm:"not null"`
	Items     []ItemDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History   []HistoryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO holds the customer's address text and its resolved components.
type AddressDTO struct {
	Text       string `gorm:"not null"`
	City       string
	PostalCode string
	State      string
	Country    string
}

// ItemDTO is an order line. Position keeps the lines in the order they were placed.
type ItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null"`
	Price     float64   `gorm:"type:numeric(12,2);not null"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

// HistoryDTO is one status change. Rows are only ever inserted.
type HistoryDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq       int       `gorm:"primaryKey"`
	Status    string    `gorm:"type:varchar(16);not null"`
	ChangedAt time.Time `gorm:"not null"`
}

func (HistoryDTO) TableName() string {
	return "order_history"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var agentID *uuid.UUID
	if id := aggregate.Agent(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	address := aggregate.Address()
	lon, lat := coordinates(address.Location)

	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			Position:  i,
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
		})
	}

	return OrderDTO{
		ID:      aggregate.ID().Bytes(),
		MartID:  aggregate.MartID().Bytes(),
		Status:  aggregate.Status().String(),
		AgentID: agentID,
		Total:   aggregate.Total(),
		Phone:   aggregate.Phone(),
		Address: AddressDTO{
			Text:       address.Street,
			City:       address.City,
			PostalCode: address.PostalCode,
			State:      address.State,
			Country:    address.Country,
		},
		Lon:       lon,
		Lat:       lat,
		CreatedAt: aggregate.CreatedAt(),
		Items:     itemDTOs,
		History:   historyFromDomain(aggregate.ID(), aggregate.History()),
	}
}

func historyFromDomain(orderID kernel.UUID, history []order.HistoryEntry) []HistoryDTO {
	dtos := make([]HistoryDTO, 0, len(history))
	for seq, entry := range history {
		dtos = append(dtos, HistoryDTO{
			OrderID:   orderID.Bytes(),
			Seq:       seq,
			Status:    entry.Status().String(),
			ChangedAt: entry.ChangedAt(),
		})
	}
	return dtos
}

func coordinates(p kernel.GeoPoint) (*float64, *float64) {
	if !kernel.IsValidPoint(p) {
		return nil, nil
	}
	lon, lat := p.Lon(), p.Lat()
	return &lon, &lat
}

// toDomain rebuilds the aggregate with RestoreOrder. A row with only one coordinate
// set, or with coordinates that are out of range, comes back without a location.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	martID, err := kernel.UUIDFromBytes(dto.MartID[:])
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.AgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}
		agentID = &aID
	}

	location, err := kernel.GeoPointFromNullable(dto.Lon, dto.Lat)
	if err != nil {
		location = kernel.GeoPoint{}
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, productErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if productErr != nil {
			return nil, productErr
		}
		item, itemErr := order.NewItem(productID, itemDTO.Quantity, itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]order.HistoryEntry, 0, len(dto.History))
	for _, h := range dto.History {
		status, statusErr := order.ParseStatus(h.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		history = append(history, order.NewHistoryEntry(status, h.ChangedAt))
	}

	return order.RestoreOrder(
		id,
		martID,
		items,
		dto.Total,
		order.Address{
			Street:     dto.Address.Text,
			City:       dto.Address.City,
			PostalCode: dto.Address.PostalCode,
			State:      dto.Address.State,
			Country:    dto.Address.Country,
			Location:   location,
		},
		dto.Phone,
		history,
		agentID,
		dto.CreatedAt,
	)
}
