// This file is part of MyMig.
//
// MyMig is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// MyMig is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with MyMig.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. For example:
//
//	e := curated.Errorf(script.CompileError, "tetris.lua", err)
//
//	if curated.Is(e, script.CompileError) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. Curated errors also support errors.Unwrap() for any
// error value found among the placeholder values, so the standard errors.Is()
// and errors.As() functions can reach uncurated errors in the chain.
//
// Error messages are normalised when they are formatted: duplicate adjacent
// parts of the message (separated by ": ") are removed. This means that
// packages can prefix their errors with the package name without worrying
// about the name being repeated when the error is passed up.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf().
package curated
