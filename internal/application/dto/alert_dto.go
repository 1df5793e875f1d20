package dto

// AlertResponse una alerta de stock derivada, con su estado de reconocimiento.
type AlertResponse struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	Type         string `json:"type"`
	CurrentStock int64  `json:"current_stock"`
	Threshold    int64  `json:"threshold"`
	Message      string `json:"message"`
	Acknowledged bool   `json:"acknowledged"`
}

// AcknowledgeAlertRequest reconoce la alerta {product_id, type}.
type AcknowledgeAlertRequest struct {
	ProductID string `json:"product_id"`
	AlertType string `json:"alert_type"`
}
