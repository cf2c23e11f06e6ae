// Package kernel provides core domain primitives for the booking service.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package contains:
//   - GeoPoint: validated geographic coordinates with great-circle distance
//   - UUID: identity value object wrapping github.com/google/uuid
//
// All kernel types are immutable value objects whose zero values are invalid;
// they must be created through their constructors, which enforce range and
// format validation via internal/pkg/guard and internal/pkg/errs.
package kernel
