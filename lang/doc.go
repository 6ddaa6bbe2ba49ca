// Package lang is the host interface to the curry language.
//
// Curry is a small expression language of anonymous curried functions and
// string, number and boolean literals. A program is a sequence of bindings,
// each of which may refer to the bindings before it:
//
//	(* combinators *)
//	val id    = fun x -> x ;
//	val const = fun x y -> x ;
//	val flip  = fun f x y -> f y x ;
//
//	def greeting = const `hello` 1,000 ;
//
// # Pipeline
//
// Source text passes through four stages, each in its own package:
//
//   - [lexer] splits text into lexemes.
//   - [parser] builds a surface syntax tree from a backtracking stream of
//     lexemes.
//   - [scope] replaces names with De Bruijn indices and rejects free
//     variables.
//   - [eval] evaluates the nameless tree to a value.
//
// [ParseString] and [ParseReader] run the first three stages over a program
// and cache the result by source text. [NewSession] evaluates a parsed
// [Program] into a [Session], which evaluates further expressions and
// bindings in the environment the program defines.
//
// # Errors
//
// Parse errors and free variables are reported as a [*SourceError] carrying
// the position and a snippet of the offending line. The underlying
// [*scope.FreeVariableError] stays reachable with [errors.As]. Evaluation faults, such as applying a value
// that is not a function, are returned by [Session] methods as a
// [*eval.Fault].
//
// [lexer]: github.com/ardnew/curry/lang/lexer
// [parser]: github.com/ardnew/curry/lang/parser
// [scope]: github.com/ardnew/curry/lang/scope
// [eval]: github.com/ardnew/curry/lang/eval
package lang
