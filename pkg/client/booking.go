package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"turfly/pkg/model"
)

// BookingClient is a typed client for the bookings API.
type BookingClient struct {
	httpClient *HttpClient
}

func NewBookingClient(baseUrl, token string) *BookingClient {
	hc := NewHttpClient(baseUrl)
	hc.Token = token
	return &BookingClient{httpClient: hc}
}

func (c *BookingClient) Create(ctx context.Context, body any) (*Response, error) {
	return c.httpClient.POST(ctx, "/api/v1/bookings", body)
}

func (c *BookingClient) CreateRaw(ctx context.Context, rawBody []byte) (*Response, error) {
	return c.httpClient.POSTRaw(ctx, "/api/v1/bookings", rawBody)
}

func (c *BookingClient) GetByID(ctx context.Context, id string) (*Response, error) {
	return c.httpClient.GET(ctx, "/api/v1/bookings/id/"+url.PathEscape(id))
}

func (c *BookingClient) Confirm(ctx context.Context, id string) (*Response, error) {
	return c.httpClient.POST(ctx, "/api/v1/bookings/id/"+url.PathEscape(id)+"/confirm", nil)
}

func (c *BookingClient) Cancel(ctx context.Context, id string) (*Response, error) {
	return c.httpClient.POST(ctx, "/api/v1/bookings/id/"+url.PathEscape(id)+"/cancel", nil)
}

func (c *BookingClient) Mine(ctx context.Context) (*Response, error) {
	return c.httpClient.GET(ctx, "/api/v1/bookings/mine")
}

func (c *BookingClient) List(ctx context.Context, status, query string) (*Response, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if query != "" {
		q.Set("q", query)
	}
	path := "/api/v1/bookings"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return c.httpClient.GET(ctx, path)
}

func (c *BookingClient) Stats(ctx context.Context) (*Response, error) {
	return c.httpClient.GET(ctx, "/api/v1/bookings/stats")
}

func (c *BookingClient) Clear(ctx context.Context) (*Response, error) {
	return c.httpClient.POST(ctx, "/api/v1/bookings/clear", nil)
}

func (c *BookingClient) Availability(ctx context.Context, turfID, date string, startTime, durationHours int) (*Response, error) {
	q := url.Values{}
	q.Set("turf_id", turfID)
	q.Set("date", date)
	q.Set("start_time", strconv.Itoa(startTime))
	q.Set("duration_hours", strconv.Itoa(durationHours))
	return c.httpClient.GET(ctx, "/api/v1/availability?"+q.Encode())
}

func (c *BookingClient) DecodeBooking(resp *Response) (*model.Booking, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}

	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("could not decode booking wrapper:\n%+v\n%s", resp.ToString(), err)
	}

	var booking model.Booking
	if err := json.Unmarshal(wrapper.Data, &booking); err != nil {
		return nil, fmt.Errorf("could not decode booking json:\n%+v\n%s", resp.ToString(), err)
	}

	return &booking, nil
}

func (c *BookingClient) DecodeBookings(resp *Response) ([]*model.Booking, int, error) {
	var wrapper struct {
		Data       json.RawMessage `json:"data"`
		TotalCount int             `json:"total_count"`
	}

	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, 0, fmt.Errorf("could not decode list resp:\n%+v\n%s", resp.ToString(), err)
	}

	var bookings []*model.Booking
	if err := json.Unmarshal(wrapper.Data, &bookings); err != nil {
		return nil, 0, fmt.Errorf("could not decode booking list:\n%+v\n%s", resp.ToString(), err)
	}

	return bookings, wrapper.TotalCount, nil
}

func (c *BookingClient) DecodeAvailable(resp *Response) (bool, error) {
	var wrapper struct {
		Data struct {
			Available bool `json:"available"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return false, fmt.Errorf("could not decode availability:\n%+v\n%s", resp.ToString(), err)
	}
	return wrapper.Data.Available, nil
}
