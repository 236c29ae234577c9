package clients

type RequestBuilder struct {
	Request *ClientRequest
	Website Website
}

func NewRequestBuilder(t *HTTPClientOptions, site Website) *RequestBuilder {
	return &RequestBuilder{
		Request: NewClientRequest(t),
		Website: site,
	}
}

func (b *RequestBuilder) Close() error {
	return b.Request.Close()
}
