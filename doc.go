// Package mifos exposes the Mifos/Fineract self-service banking API as Model Context Protocol tools.
//
// Every tool maps to exactly one upstream REST call; the package wires the banking tools and the
// embedded API guide into an MCP handler and builds an MCP server for the stdio, SSE or streamable
// HTTP transport. The same tool table is served as REST by the api package.
//
// Example:
//
//	service := banking.New(upstream.New(upstream.Config{Tenant: "default"}))
//	srv, _ := mifos.NewServer(mifos.NewHandler(service, resource.NewGuide()), &mifos.ServerOptions{ /* … */ })
package mifos
