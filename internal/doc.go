// Package solarstats serves long term sun and solar energy statistics for a
// residential solar installation.
//
// # Architecture
//
// The service is structured into several key packages:
//   - sun: sunrise, solar noon, sunset, day length and noon altitude for a
//     date and location
//   - energy: parsing of monthly YYYY_MM.csv exports and monthly rollups
//   - models: Shared data structures (Date, TimeOfDay, SunStats, DailyData,
//     MonthlyData)
//   - server: HTTP routes, request validation and the middleware chain
//     (request id, logging, rate limiting, metrics)
//   - health: data directory probe behind /health and the gRPC health service
//   - config, logging: YAML/env configuration and the logrus logger
//
// Key Features
//
//   - Sun statistics:
//     Events are computed for the solar cycle whose transit falls on the
//     requested local date. Polar day and polar night yield null sunrise,
//     sunset and day length instead of errors.
//
//   - Energy data:
//     Files are read on every request; nothing is cached or persisted. A
//     malformed row fails the whole file.
//
//   - Ranges:
//     Every start_date/end_date pair is inclusive on both ends.
//
// Example Usage
//
//	GET /sun/date/2024-06-21?latitude=37.56&longitude=-121.95&timezone=America/Los_Angeles
//	GET /sun/range?start_date=2024-06-01&end_date=2024-06-30
//	GET /day_data/range?start_date=2024-10-01&end_date=2024-10-31
//	GET /monthly_data
//
// For more information about specific packages, see their respective
// documentation.
package solarstats
