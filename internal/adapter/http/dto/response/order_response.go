package response

import (
	"production_scheduler/internal/domain/entities"
	"production_scheduler/internal/domain/status"
	"production_scheduler/internal/usecase"
)

type OrderResponse struct {
	ID               string `json:"id"`
	WorkOrderID      string `json:"wo"`
	Quote            string `json:"quote"`
	PONumber         string `json:"po_number"`
	Status           string `json:"status"`
	CustomerName     string `json:"customer_name"`
	ModelDescription string `json:"model_description"`
	Price            string `json:"price"`
	ScheduledDate    string `json:"scheduled_date"`
	UploadedName     string `json:"uploaded_name"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:               o.ID,
		WorkOrderID:      o.WorkOrderID,
		Quote:            o.Quote,
		PONumber:         o.PONumber,
		Status:           o.Status,
		CustomerName:     o.CustomerName,
		ModelDescription: o.ModelDescription,
		Price:            o.Price,
		ScheduledDate:    o.ScheduledDate,
		UploadedName:     o.UploadedName,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = FromOrder(o)
	}
	return out
}

type AdminRowResponse struct {
	OrderResponse
	Date            string `json:"date"`
	Title           string `json:"title"`
	StatusKey       string `json:"status_key"`
	StatusLabel     string `json:"status_label"`
	BackgroundColor string `json:"backgroundColor"`
	BorderColor     string `json:"borderColor"`
	TextColor       string `json:"textColor"`
}

type AdminOrdersResponse struct {
	Rows      []AdminRowResponse `json:"rows"`
	Malformed []OrderResponse    `json:"malformed"`
}

func FromAdminOrders(a usecase.AdminOrders) AdminOrdersResponse {
	rows := make([]AdminRowResponse, len(a.Rows))
	for i, r := range a.Rows {
		rows[i] = AdminRowResponse{
			OrderResponse:   FromOrder(r.Order),
			Date:            r.Date.Format(entities.DateLayout),
			Title:           r.Title,
			StatusKey:       string(r.StatusKey),
			StatusLabel:     status.Label(r.StatusKey),
			BackgroundColor: r.Color.Background,
			BorderColor:     r.Color.Border,
			TextColor:       r.Color.Text,
		}
	}
	return AdminOrdersResponse{Rows: rows, Malformed: FromOrders(a.Malformed)}
}

type BatchResponse struct {
	Written int             `json:"written"`
	Orders  []OrderResponse `json:"orders"`
}
