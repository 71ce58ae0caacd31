// Package curve implements a 2D geometry kernel for cubic Bézier curves:
// evaluation, subdivision, analytic intersection with lines, segments,
// circles and axis-aligned rectangles, and iterative least-squares fitting
// of curves to sampled point data.
//
// # Values
//
// All types are plain values. [Point] is a position, [Vec2] a displacement
// (the difference of two points), and [CubicBez] an ordered tuple of four
// control points. No constructor validates geometry: degenerate curves, for
// example with all four control points coincident, are legal inputs
// everywhere, and operations that are undefined on them fall back to
// documented heuristics instead of failing.
//
// No function retains references to its arguments or to shared state, so
// independent curves can be processed concurrently without synchronization.
//
// # Root solving
//
// [SolveQuadratic] and [SolveCubic] find all real roots of their
// polynomials analytically. The cubic solver uses the depressed-cubic
// substitution with a discriminant branch between the trigonometric method
// (three real roots) and cube-root extraction (one real root), following
// Blinn by way of [How to solve a cubic equation, revisited]. [RefineRoot]
// polishes a single root from an initial guess with a bounded number of
// Newton-Raphson steps.
//
// # Intersections
//
// Intersection queries substitute the curve's per-axis cubic polynomial
// into the target primitive's implicit equation and solve for the curve
// parameter. They never return errors: a root solve that fails or
// degenerates for one edge contributes no points and does not affect the
// other edges. Parameter preconditions, by contrast, are enforced:
// [CubicBez.Evaluate] rejects parameters outside [0, 1] with
// [ErrParamOutOfRange] rather than clamping, so bugs in callers walking a
// curve are not silently masked.
//
// # Fitting
//
// [FitCubicBez] fits a single cubic to an ordered point sequence using
// Schneider's algorithm: chord-length parameterization, a least-squares
// solve for the two free control points, and Newton-Raphson
// re-parameterization of the samples against the current curve, iterated a
// fixed number of times. The fixed iteration count trades guaranteed
// convergence for predictable cost; callers that need a hard error bound
// must validate the residual themselves.
//
// # Text format
//
// A curve round-trips through an SVG-path-like string of the form
// "M sx sy C c0x c0y, c1x c1y, ex ey" via [CubicBez.SVGPath] and
// [ParseCubicBez], using locale-invariant decimal formatting.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [How to solve a cubic equation, revisited] by Christoph Peters
//   - An Algorithm for Automatically Fitting Digitized Curves, Philip J.
//     Schneider, Graphics Gems I
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
package curve
