// Package openapi serves the OpenAPI 3.1 document generated from the
// registered Huma operations, plus a Swagger UI page.
package openapi

import (
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"
)

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Dataset Pricer API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "/swagger/swagger.json",
      dom_id: "#swagger-ui",
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout",
    });
  </script>
</body>
</html>`

// RegisterRoutes adds Swagger UI and spec endpoints to the Echo instance.
// The document is rendered on each request so operations registered after
// this call are included.
func RegisterRoutes(e *echo.Echo, api huma.API) {
	e.GET("/swagger/swagger.json", serveJSON(api))
	e.GET("/swagger/swagger.yaml", serveYAML(api))
	e.GET("/swagger/index.html", serveUI)
	e.GET("/swagger", redirectToUI)
	e.GET("/swagger/", redirectToUI)
}

func serveJSON(api huma.API) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := json.Marshal(api.OpenAPI())
		if err != nil {
			return c.String(http.StatusInternalServerError, "rendering spec failed")
		}
		return c.Blob(http.StatusOK, "application/json", data)
	}
}

func serveYAML(api huma.API) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := api.OpenAPI().YAML()
		if err != nil {
			return c.String(http.StatusInternalServerError, "rendering spec failed")
		}
		return c.Blob(http.StatusOK, "text/yaml", data)
	}
}

func serveUI(c echo.Context) error {
	return c.HTML(http.StatusOK, swaggerUIHTML)
}

func redirectToUI(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
}
