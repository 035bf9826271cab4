package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rl1809/kata/internal/core/domain"
	"github.com/rl1809/kata/internal/core/service"
)

var ErrInvalidRequest = errors.New("invalid request")

type FormatRequest struct {
	Input   string `json:"input"`
	ToUpper *bool  `json:"to_upper,omitempty"`
}

type FormatResponse struct {
	Result string `json:"result"`
}

type FilterRequest struct {
	Items []domain.RatedItem `json:"items"`
}

type FilterResponse struct {
	Items []domain.RatedItem `json:"items"`
}

type ConcatRequest struct {
	Arrays [][]json.RawMessage `json:"arrays"`
}

type ConcatResponse struct {
	Result []json.RawMessage `json:"result"`
}

type VehicleRequest struct {
	Make  string  `json:"make"`
	Year  int     `json:"year"`
	Model *string `json:"model,omitempty"`
}

type VehicleResponse struct {
	Lines []string `json:"lines"`
}

type ProcessRequest struct {
	Value json.RawMessage `json:"value"`
}

type ProcessResponse struct {
	Result float64 `json:"result"`
}

type ExpensiveRequest struct {
	Products []domain.Product `json:"products"`
}

type ExpensiveResponse struct {
	Product *domain.Product `json:"product"`
}

type DayTypeRequest struct {
	Day string `json:"day"`
}

type DayTypeResponse struct {
	Day  string         `json:"day"`
	Type domain.DayType `json:"type"`
}

type SquareRequest struct {
	N *float64 `json:"n"`
}

type SquareResponse struct {
	Result float64 `json:"result"`
}

// Operations adapts the exercise functions to request/response pairs shared
// by the HTTP and gRPC handlers.
type Operations struct {
	squarer *service.Squarer
}

func NewOperations(squarer *service.Squarer) *Operations {
	return &Operations{squarer: squarer}
}

func (o *Operations) Format(_ context.Context, req FormatRequest) (FormatResponse, error) {
	if req.ToUpper == nil {
		return FormatResponse{Result: service.FormatString(req.Input)}, nil
	}
	return FormatResponse{Result: service.FormatString(req.Input, *req.ToUpper)}, nil
}

func (o *Operations) Filter(_ context.Context, req FilterRequest) (FilterResponse, error) {
	return FilterResponse{Items: service.FilterByRating(req.Items)}, nil
}

func (o *Operations) Concat(_ context.Context, req ConcatRequest) (ConcatResponse, error) {
	return ConcatResponse{Result: service.ConcatenateArrays(req.Arrays...)}, nil
}

func (o *Operations) Vehicle(_ context.Context, req VehicleRequest) (VehicleResponse, error) {
	var buf bytes.Buffer
	if req.Model != nil {
		car := domain.NewCar(req.Make, req.Year, *req.Model)
		car.GetInfo(&buf)
		car.GetModel(&buf)
	} else {
		domain.NewVehicle(req.Make, req.Year).GetInfo(&buf)
	}
	return VehicleResponse{Lines: strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")}, nil
}

func (o *Operations) Process(_ context.Context, req ProcessRequest) (ProcessResponse, error) {
	v, err := ParseValue(req.Value)
	if err != nil {
		return ProcessResponse{}, err
	}
	return ProcessResponse{Result: service.ProcessValue(v)}, nil
}

func (o *Operations) Expensive(_ context.Context, req ExpensiveRequest) (ExpensiveResponse, error) {
	p, ok := service.GetMostExpensiveProduct(req.Products)
	if !ok {
		return ExpensiveResponse{}, nil
	}
	return ExpensiveResponse{Product: &p}, nil
}

func (o *Operations) DayType(_ context.Context, req DayTypeRequest) (DayTypeResponse, error) {
	day, err := domain.ParseDay(req.Day)
	if err != nil {
		return DayTypeResponse{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return DayTypeResponse{Day: day.String(), Type: service.GetDayType(day)}, nil
}

func (o *Operations) Square(ctx context.Context, req SquareRequest) (SquareResponse, error) {
	if req.N == nil {
		return SquareResponse{}, fmt.Errorf("%w: n is required", ErrInvalidRequest)
	}
	result, err := o.squarer.SquareAsync(*req.N).Await(ctx)
	if err != nil {
		return SquareResponse{}, err
	}
	return SquareResponse{Result: result}, nil
}

// ParseValue maps a JSON string to domain.Text and a JSON number to
// domain.Number. Anything else is rejected.
func ParseValue(raw json.RawMessage) (domain.Value, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: value: %v", ErrInvalidRequest, err)
	}
	switch v := v.(type) {
	case string:
		return domain.Text(v), nil
	case float64:
		return domain.Number(v), nil
	default:
		return nil, fmt.Errorf("%w: value must be a string or a number, got %T", ErrInvalidRequest, v)
	}
}

type call func(ctx context.Context, body []byte) (any, error)

func bind[Req, Resp any](fn func(context.Context, Req) (Resp, error)) call {
	return func(ctx context.Context, body []byte) (any, error) {
		var req Req
		if len(bytes.TrimSpace(body)) > 0 {
			if err := json.Unmarshal(body, &req); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
			}
		}
		return fn(ctx, req)
	}
}

type route struct {
	path   string // HTTP path under /api/
	method string // gRPC method name
	call   call
}

func (o *Operations) routes() []route {
	return []route{
		{"format", "Format", bind(o.Format)},
		{"filter", "Filter", bind(o.Filter)},
		{"concat", "Concat", bind(o.Concat)},
		{"vehicle", "Vehicle", bind(o.Vehicle)},
		{"process", "Process", bind(o.Process)},
		{"expensive", "Expensive", bind(o.Expensive)},
		{"day-type", "DayType", bind(o.DayType)},
		{"square", "Square", bind(o.Square)},
	}
}
