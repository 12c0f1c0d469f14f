package models

// Response is the uniform JSON envelope returned by every endpoint:
// {success, message?, count?, data?}.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// OKMessage wraps data in a success envelope with a message.
func OKMessage(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// OKList wraps a collection in a success envelope carrying its length.
func OKList(count int, data any) Response {
	return Response{Success: true, Count: &count, Data: data}
}
