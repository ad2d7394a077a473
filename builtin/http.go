package builtin

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/hyperswine/sol/value"
)

// registerHTTP installs wget/post_http, grounded in the teacher's
// std/http.go. `wget` is the name spec §6/§7 calls out explicitly for
// a GET request.
func registerHTTP(r *Registry) {
	r.register(&value.Builtin{Name: "wget", MinArity: 1, MaxArity: 1, Invoke: builtinWget})
	r.register(&value.Builtin{Name: "post_http", MinArity: 2, MaxArity: 2, Invoke: builtinPostHTTP})
}

var httpClient = &http.Client{Timeout: 30 * time.Second}

func builtinWget(rt value.Runtime, args []value.Value) (value.Value, error) {
	url, ok := strArg(args[0])
	if !ok {
		return value.Err(&value.String{Value: "wget expects a URL string"}), nil
	}
	resp, err := httpClient.Get(url)
	if err != nil {
		return value.Err(&value.String{Value: err.Error()}), nil
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return value.Err(&value.String{Value: err.Error()}), nil
	}
	if resp.StatusCode >= 400 {
		return value.Err(&value.String{Value: resp.Status}), nil
	}
	return value.Ok(&value.String{Value: string(body)}), nil
}

func builtinPostHTTP(rt value.Runtime, args []value.Value) (value.Value, error) {
	url, ok1 := strArg(args[0])
	body, ok2 := strArg(args[1])
	if !ok1 || !ok2 {
		return value.Err(&value.String{Value: "post_http expects (url, body) strings"}), nil
	}
	resp, err := httpClient.Post(url, "application/json", bytes.NewBufferString(body))
	if err != nil {
		return value.Err(&value.String{Value: err.Error()}), nil
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return value.Err(&value.String{Value: err.Error()}), nil
	}
	if resp.StatusCode >= 400 {
		return value.Err(&value.String{Value: resp.Status}), nil
	}
	return value.Ok(&value.String{Value: string(respBody)}), nil
}
