// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - TextExtractor: Converts one file format into plain text
//   - ExtractorRegistry: Selects the extractor for a file
//   - ReportStore: Report persistence
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - SampleCatalog: Preset sample texts. Without it, sample comparisons are disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
