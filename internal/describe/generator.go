// Package describe generates one-sentence marketing descriptions for
// services using an external text-generation model.
package describe

import "context"

// Generator produces a short description for a service offered by a business.
type Generator interface {
	Describe(ctx context.Context, businessName, serviceName string) (string, error)
}
