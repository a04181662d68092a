package request

import "production_scheduler/internal/domain/entities"

// OrderRequest is one row of the admin write path. An empty id creates a row.
type OrderRequest struct {
	ID               string `json:"id"`
	WorkOrderID      string `json:"wo" binding:"required"`
	Quote            string `json:"quote"`
	PONumber         string `json:"po_number"`
	Status           string `json:"status"`
	CustomerName     string `json:"customer_name" binding:"required"`
	ModelDescription string `json:"model_description"`
	Price            string `json:"price"`
	ScheduledDate    string `json:"scheduled_date" binding:"required"`
	UploadedName     string `json:"uploaded_name"`
}

func (r OrderRequest) ToEntity() entities.Order {
	return entities.Order{
		ID:               r.ID,
		WorkOrderID:      r.WorkOrderID,
		Quote:            r.Quote,
		PONumber:         r.PONumber,
		Status:           r.Status,
		CustomerName:     r.CustomerName,
		ModelDescription: r.ModelDescription,
		Price:            r.Price,
		ScheduledDate:    r.ScheduledDate,
		UploadedName:     r.UploadedName,
	}
}

// OrderBatchRequest carries the rows of one upload.
type OrderBatchRequest struct {
	UploadedName string         `json:"uploaded_name"`
	Orders       []OrderRequest `json:"orders" binding:"required,min=1,dive"`
}

// ToEntities stamps UploadedName on rows that do not carry their own.
func (r OrderBatchRequest) ToEntities() []entities.Order {
	out := make([]entities.Order, len(r.Orders))
	for i, o := range r.Orders {
		if o.UploadedName == "" {
			o.UploadedName = r.UploadedName
		}
		out[i] = o.ToEntity()
	}
	return out
}
