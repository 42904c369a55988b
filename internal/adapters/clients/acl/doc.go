// Package acl is the anti-corruption layer between the presentation client
// and the dataset service's JSON API.
//
// Wire DTOs stay unexported in this package. Callers only see domain types
// and domain errors:
//
//   - 404 → [domain.ErrNotFound]
//   - 400/422 and other 4xx → [domain.ErrValidation]
//   - 429, 5xx → [domain.ErrUnavailable]
//   - transport failures, [clients.ErrCircuitOpen] and
//     [clients.ErrMaxRetriesExceeded] → [domain.ErrUnavailable]
//
// [DatasetAdapter] implements ports.DatasetClient for the browse session and
// ports.HealthChecker for the client's health command.
package acl
