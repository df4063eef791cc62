package delivery_event

// deliveryEvent сообщение провайдера доставки в топике delivery events.
type deliveryEvent struct {
	ExternalID string  `json:"externalId"`
	Event      string  `json:"event"`
	Note       *string `json:"note,omitempty"`
}
