// Package version normalizes free-form dotted version strings into the fixed
// four component form required by binary version metadata.
//
// # Normalization
//
// Normalize never fails. It keeps the first four dot separated segments,
// strips every non-digit character from each segment and zero-fills what is
// missing:
//
//	version.Normalize("1")          // 1.0.0 (1, 0, 0, 0)
//	version.Normalize("1.2")        // 1.2.0 (1, 2, 0, 0)
//	version.Normalize("1.2.3.4")    // 1.2.3 (1, 2, 3, 4)
//	version.Normalize("1..3.4")     // 1.0.3 (1, 0, 3, 4)
//	version.Normalize("1.2.dev3")   // 1.2.3 (1, 2, 3, 0)
//	version.Normalize("1.2.3.4.5")  // same as "1.2.3.4"
//
// # Representations
//
// A Version has two textual forms:
//
//   - String: the display version, "Major.Minor.Patch". The build component
//     is never included.
//   - Tuple: all four components, "(Major, Minor, Patch, Build)", as used by
//     the filevers/prodvers fields of a version resource file.
//
// Re-normalizing a display string yields the same display string.
package version
