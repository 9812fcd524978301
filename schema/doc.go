// Package schema provides borrowed views of the serialized flat-model
// schema.
//
// The types here mirror what the model container library materializes for
// one graph node: the builtin operator code, the schema-level enumerations,
// and the per-operator options record. An Operator value is owned by the
// caller (typically the loaded model) and must outlive any decode call that
// reads it; the decoder never retains a reference.
//
// Exactly one options field of Operator is populated, selected by the
// operator code. The decoder assumes, and does not re-verify, that the
// populated field corresponds to the code it is handed.
//
// The enumerations are closed and versioned: new codes are only ever
// appended, and BuiltinOperatorPlaceholder reserves the range for future
// operator codes. Whether an unrecognized code is an error or resolves to a
// default differs per enumeration and is decided by the opdata converters,
// not here.
package schema
