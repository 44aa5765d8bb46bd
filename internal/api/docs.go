package api

import (
	"encoding/json"
	"net/http"
	"sync"
)

// loadDocument parses the embedded document once and reuses it for every
// request.
var loadDocument = sync.OnceValues(func() ([]byte, error) {
	swagger, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	return json.Marshal(swagger)
})

// RegisterDocsRoutes mounts the public documentation surface. None of these
// routes require a staff session.
func RegisterDocsRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs", http.StatusFound)
	})
	mux.HandleFunc("GET /docs", serveSwaggerUI)
	mux.HandleFunc("GET /docs/openapi", serveDocumentJSON)
	mux.HandleFunc("GET /docs/openapi.yaml", serveDocumentYAML)
}

func serveDocumentJSON(w http.ResponseWriter, _ *http.Request) {
	body, err := loadDocument()
	if err != nil {
		http.Error(w, "api document unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(body) //nolint:errcheck // client went away
}

func serveDocumentYAML(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(RawSpec()) //nolint:errcheck // client went away
}

func serveSwaggerUI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(swaggerUIPage)) //nolint:errcheck // client went away
}

// swaggerUIPage sends the staff session cookie with "Try it out" requests so
// the sync endpoints can be exercised from a logged-in browser.
const swaggerUIPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>donorsync sync API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body style="margin:0">
  <div id="docs"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = () => {
      SwaggerUIBundle({
        url: '/docs/openapi',
        dom_id: '#docs',
        withCredentials: true,
        persistAuthorization: true,
        tryItOutEnabled: true,
        requestInterceptor: (req) => { req.credentials = 'include'; return req; },
        supportedSubmitMethods: ['get', 'post', 'put']
      });
    };
  </script>
</body>
</html>`
