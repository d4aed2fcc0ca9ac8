package http

import (
	"martdelivery/internal/core/application/usecases/queries"
	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/domain/model/mart"
	"martdelivery/internal/core/domain/model/order"
	"martdelivery/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// kernelID converts a wire UUID; the nil UUID becomes the zero kernel.UUID, which
// every constructor rejects as missing.
func kernelID(id openapi_types.UUID) kernel.UUID {
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}
	}
	return converted
}

func optionalKernelID(id *openapi_types.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	converted := kernelID(*id)
	return &converted
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func locationOf(p kernel.GeoPoint) *servers.Location {
	if !kernel.IsValidPoint(p) {
		return nil
	}
	return &servers.Location{Lng: p.Lon(), Lat: p.Lat()}
}

func orderResponse(o *order.Order) servers.Order {
	items := o.Items()
	responseItems := make([]servers.OrderItem, len(items))
	for i, item := range items {
		responseItems[i] = servers.OrderItem{
			ProductId: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
		}
	}

	history := o.History()
	responseHistory := make([]servers.StatusHistoryEntry, len(history))
	for i, entry := range history {
		responseHistory[i] = servers.StatusHistoryEntry{
			Status:    servers.OrderStatus(entry.Status().String()),
			ChangedAt: entry.ChangedAt(),
		}
	}

	address := o.Address()
	response := servers.Order{
		Id:          o.ID().Bytes(),
		MartId:      o.MartID().Bytes(),
		Items:       responseItems,
		TotalAmount: o.Total(),
		Status:      servers.OrderStatus(o.Status().String()),
		Phone:       o.Phone(),
		CustomerAddress: servers.Address{
			Text:       address.Street,
			City:       optionalString(address.City),
			PostalCode: optionalString(address.PostalCode),
			State:      optionalString(address.State),
			Country:    optionalString(address.Country),
		},
		Location:  locationOf(o.Location()),
		History:   responseHistory,
		CreatedAt: o.CreatedAt(),
	}
	if agent := o.Agent(); agent != nil {
		id := agent.Bytes()
		response.DeliveryPersonId = &id
	}
	return response
}

func batchResponse(batch queries.GetOptimizedBatchQueryResponse) servers.Batch {
	route := make([]servers.RouteStop, len(batch.Route))
	for i, stop := range batch.Route {
		route[i] = servers.RouteStop{
			Order:          orderResponse(stop.Order),
			Distance:       stop.Distance,
			DistanceMeters: stop.DistanceMeters,
		}
	}

	return servers.Batch{
		Mart: servers.BatchMart{
			Id:       batch.Mart.ID.Bytes(),
			Name:     batch.Mart.Name,
			Location: servers.Location{Lng: batch.Mart.Location.Lon, Lat: batch.Mart.Location.Lat},
		},
		OptimizedRoute:      route,
		TotalDistance:       batch.TotalDistance,
		TotalDistanceMeters: batch.TotalDistanceMeters,
	}
}

func martResponse(view queries.MartView) servers.Mart {
	response := servers.Mart{
		Id:        view.ID.Bytes(),
		OwnerId:   view.OwnerID.Bytes(),
		Name:      view.Name,
		Address:   view.Address,
		CreatedAt: view.CreatedAt,
	}
	if view.Location != nil {
		response.Location = &servers.Location{Lng: view.Location.Lon, Lat: view.Location.Lat}
	}
	return response
}

func martResponseFromDomain(m *mart.Mart) servers.Mart {
	response := servers.Mart{
		Id:        m.ID().Bytes(),
		OwnerId:   m.OwnerID().Bytes(),
		Name:      m.Name(),
		Address:   m.Address(),
		CreatedAt: m.CreatedAt(),
	}
	if location, err := m.Location(); err == nil {
		response.Location = locationOf(location)
	}
	return response
}
