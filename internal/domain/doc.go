// Package domain contains the records served by the API, the caller role
// model and the value types shared by every persistence backend. It is
// independent of any specific infrastructure or delivery mechanism.
package domain
