// Package gen implements the code generation engine: case conversion,
// layered type resolution with nullability transforms, per-field tag
// rendering, template resolution against embedded built-ins, and the
// per-table rendering pipeline that binds them together.
//
// A Generator is bound to one target language at construction time,
// where its template is resolved and compiled exactly once. Generation
// itself is a pure function of the introspected schema and the loaded
// configuration; the only side effects are the written files and the
// progress log lines.
package gen
