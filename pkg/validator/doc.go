// Package validator provides a composable set of stateless validation helpers
// for CLI argument checking: runtime kind checks for dynamically typed values,
// magnitude range checks, filesystem existence checks, path sanitization, and
// proxy URL validation.
//
// The package promotes declarative validation by letting you build small Rule
// values that encapsulate a boolean Check function together with a classified
// error. Rules are evaluated with the Apply helper which aggregates any
// failures into a ValidationErrors slice that satisfies the error interface,
// making it convenient to surface every bad argument in a single error return.
//
// # Architecture
//
// Each source file groups a family of rules for a specific concern
// (`kind_rules.go`, `magnitude_rules.go`, `path_rules.go`, etc.). Every
// exported validation function either constructs and returns a Rule instance
// or performs a single check and returns the validated value; there is no
// hidden global state, therefore the package is completely stateless,
// allocation-light, and goroutine-safe.
//
// Core building blocks:
//   - Rule              – lightweight struct containing Check func and error meta
//   - ValidationError   – describes a single failure with an ErrorKind class
//   - ValidationErrors  – slice type that implements the error interface
//   - Kind              – enumerated runtime kinds for dynamic value checks
//   - Magnitude         – length for sized values, the value itself for scalars
//
// # Usage
//
//	err := validator.Apply(
//	    validator.OneOfKind("sentence_len", sentenceLen, validator.KindInt),
//	    validator.MagnitudeBetween("sentence_len", sentenceLen, 1, 1000),
//	    validator.ExistingFile("embedding_model", modelPath),
//	)
//	if err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        // iterate over field-level messages
//	    }
//	}
//
// # Error Handling
//
// Failures are classified as TypeError (runtime kind mismatch) or ValueError
// (range, existence, or pattern failure). Every failure is detected
// synchronously at the call site; callers are expected to treat failures as
// fatal configuration errors at startup. The standalone Validate* helpers
// wrap the package sentinels so errors.Is works across the boundary.
//
// # Range Semantics
//
// All range checks use an inclusive lower bound and an exclusive upper bound.
// A value's magnitude is its length when it has one (strings, slices, maps)
// and the value itself otherwise.
package validator
