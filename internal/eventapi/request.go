package eventapi

import (
	"net/url"
)

// Request is one journey event. The platform expects it form encoded with
// the data fields nested under Data[...].
type Request struct {
	ContactKey         string
	EventDefinitionKey string
	Data               map[string]string
}

// Set stores a data field, allocating Data when needed.
func (r *Request) Set(field, value string) {
	if r.Data == nil {
		r.Data = make(map[string]string)
	}
	r.Data[field] = value
}

// Values returns the request as form values.
func (r *Request) Values() url.Values {
	v := url.Values{}
	v.Set("ContactKey", r.ContactKey)
	v.Set("EventDefinitionKey", r.EventDefinitionKey)
	for field, value := range r.Data {
		v.Set("Data["+field+"]", value)
	}
	return v
}

// Encode returns the form-encoded body. Keys are sorted, so the output is
// stable.
func (r *Request) Encode() string {
	return r.Values().Encode()
}
