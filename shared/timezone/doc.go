// Package timezone provides the salon's clock.
//
// Usage Examples:
//
//  1. The salon's calendar date, used to refuse bookings in the past:
//     today := timezone.Today()               // "2025-12-12"
//
//  2. Formatting an instant as a salon date:
//     day := timezone.Date(someTime)          // YYYY-MM-DD in the salon timezone
//
// The timezone is configured via the APP_TIMEZONE environment variable
// (default "Asia/Bangkok") and is initialized when the package is imported.
// Use standard IANA timezone database names.
package timezone
