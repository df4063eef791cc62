package webhook_payment_post

import "encoding/json"

// paymentObject общие поля PaymentIntent и Charge, которые нужны для
// сопоставления события с заказом.
type paymentObject struct {
	ID            string            `json:"id"`
	Object        string            `json:"object"`
	Metadata      map[string]string `json:"metadata"`
	PaymentIntent json.RawMessage   `json:"payment_intent"`
}

func (o paymentObject) transactionID() string {
	if o.Object != "charge" || len(o.PaymentIntent) == 0 {
		return o.ID
	}

	var paymentIntentID string
	if err := json.Unmarshal(o.PaymentIntent, &paymentIntentID); err == nil && paymentIntentID != "" {
		return paymentIntentID
	}

	var expanded struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(o.PaymentIntent, &expanded); err == nil && expanded.ID != "" {
		return expanded.ID
	}
	return o.ID
}
