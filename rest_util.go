package main

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strconv"

	"golang.org/x/exp/slog"
)

// WriteResponse marshals resp as JSON and writes it with status.
func WriteResponse[T any](w http.ResponseWriter, resp T, status int) {
	data, err := json.Marshal(resp)
	if err != nil {
		slog.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(err.Error()))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

// Result pairs a handler's response body with the HTTP status to send it
// with.
type Result struct {
	result any
	status int
}

// OK wraps value as a 200 response.
func OK[T any](value T) Result {
	return Result{result: value, status: http.StatusOK}
}

// BadRequest wraps value as a 400 response.
func BadRequest[T any](value T) Result {
	return Result{result: value, status: http.StatusBadRequest}
}

type queryField struct {
	index int
	name  string
	kind  reflect.Kind
}

// MapGet registers a GET handler at path that binds F's tagged fields from
// the request's query parameters before calling handler. F must be a
// struct whose fields carry `json` tags naming the query parameter.
func MapGet[F any](app *http.ServeMux, path string, handler func(F) Result) {
	var zero F
	typ := reflect.TypeOf(zero)
	fields := make([]queryField, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("json")
		if tag == "" {
			continue
		}
		fields = append(fields, queryField{index: i, name: tag, kind: field.Type.Kind()})
	}

	app.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		slog.Info("GET " + path)
		query := r.URL.Query()
		v := reflect.New(typ).Elem()
		for _, f := range fields {
			raw := query.Get(f.name)
			if raw == "" {
				continue
			}
			target := v.Field(f.index)
			switch f.kind {
			case reflect.Bool:
				if val, err := strconv.ParseBool(raw); err == nil {
					target.SetBool(val)
				}
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
				if val, err := strconv.ParseInt(raw, 10, 64); err == nil {
					target.SetInt(val)
				}
			case reflect.Float32, reflect.Float64:
				if val, err := strconv.ParseFloat(raw, 64); err == nil {
					target.SetFloat(val)
				}
			case reflect.String:
				target.SetString(raw)
			}
		}
		req := v.Interface().(F)
		res := handler(req)
		if res.status != http.StatusOK {
			slog.Error("failed GET " + path)
			WriteResponse(w, NewErrorResponse(path, res.result), res.status)
			return
		}
		slog.Info("finished GET " + path)
		WriteResponse(w, res.result, res.status)
	})
}
