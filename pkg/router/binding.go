package router

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mitchellh/mapstructure"
)

// bind decodes the JSON body of write requests into req, then overlays query
// string and path values. Path values win over query values of the same name.
func bind(r *http.Request, params []string, req any) error {
	if isBodyMethod(r.Method) && r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	}

	values := map[string]any{}
	for key, value := range r.URL.Query() {
		if len(value) > 0 {
			values[key] = value[len(value)-1]
		}
	}

	for _, name := range params {
		values[name] = r.PathValue(name)
	}

	if len(values) == 0 {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           req,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(values)
}
