// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Extractor: turns uploaded file bytes into a text blob
//   - EmbeddingService: generates vector embeddings (Ollama)
//   - VectorIndex: in-memory document/chunk/embedding store with
//     cosine similarity search
//   - SnapshotStore: filename-keyed durable blob storage for index
//     snapshots
//   - ConfigStore: application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
