// Package schema instruments OpenAPI schema.
package schema

import "github.com/swaggest/rest/openapi"

// SetupOpenAPICollector sets up API documentation collector.
func SetupOpenAPICollector(apiSchema *openapi.Collector) {
	apiSchema.SpecSchema().SetTitle("TaskTrail")
	apiSchema.SpecSchema().SetDescription("This service manages tasks as chains of immutable revisions.")
	apiSchema.SpecSchema().SetVersion("1.0.0")
}
