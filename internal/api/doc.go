// Package api handles incoming HTTP requests for the record endpoints:
// parameter parsing, role-guarded routing and response formatting. It acts
// as an adapter between HTTP clients and the record repositories.
package api
