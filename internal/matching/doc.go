// Package matching compiles declarative route specifications into reusable
// per-criterion predicates.
//
// A route is compiled exactly once, at registration time. Each criterion the
// route declares (url, query, method, headers, params, body, function) is
// turned into a predicate over an observed call; criteria the route does not
// declare produce no predicate at all, so their absence can never be mistaken
// for a match. The dispatch layer folds the active predicates with logical
// AND per call, keeping per-criterion introspection for diagnostics.
//
// Key types:
//
//   - Compiler: compiles routes; pattern compilers (glob, path template) are
//     injected via Compilers and default to doublestar and the internal
//     express-style template compiler
//   - CompiledMatcher: the ordered set of active predicates for one route,
//     immutable and safe for concurrent evaluation
//   - Registry: the fixed, ordered list of criterion factories
//
// Match-time evaluation is side-effect free and never fails: a malformed
// request body, a missing header or a method mismatch all resolve to an
// ordinary non-match. Caller mistakes in the route specification itself
// (e.g. params matching without an express: url pattern) are reported as
// errors by Compile.
package matching
