// Package notekeeper is the Composition Root for the notekeeper application.
//
// It connects the note store (Domain Layer) with the file adapter
// (Persistence Layer) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// notekeeper is a personal notebook kept in one flat file. The whole collection
// lives in memory and is rewritten to disk after every change, so the file is
// always the latest state and stays readable by humans and other tools.
//
// Features:
//
//   - **Flat File**: one JSON (or YAML) array of notes, 4-space indented.
//   - **Eager Persistence**: every add, edit and delete rewrites the file.
//   - **Prefix Filtering**: list notes by a textual timestamp prefix ("2024-01").
//   - **Watchable**: observe external edits of the data file.
//   - **Extensible**: other backends plug in via `core.Repository`.
//
// Usage:
//
//	store, err := notekeeper.New(ctx, "notes.json",
//		notekeeper.WithLogger(logger),
//	)
//
//	note, err := store.Add(ctx, "Groceries", "Milk, eggs")
//	today := store.List("2024-01-10")
package notekeeper
