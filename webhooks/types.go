package webhooks

import "encoding/xml"

// InboundMessage is the decoded Twilio webhook form: who sent the message
// and what they wrote. Everything else in Twilio's payload is ignored.
type InboundMessage struct {
	From string
	Body string
}

// TwiMLResponse is the reply envelope Twilio expects in the webhook
// response body.
type TwiMLResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// Encode renders the TwiML document with the XML header.
func (r TwiMLResponse) Encode() ([]byte, error) {
	body, err := xml.Marshal(r)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// SendRequest is the operator push-message payload for POST /api/messages.
type SendRequest struct {
	To   string `json:"to"`
	Body string `json:"body"`
}
