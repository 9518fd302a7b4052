/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package sqlstate decodes and classifies SQLSTATE codes.
//
// A SQLSTATE is a five-character code made of a two-character class and a
// three-character subclass:
//
//	01 005
//	^^ ^^^
//	|  subclass: insufficient item descriptor areas
//	class: warning
//
// Parse turns a raw code into a State. A State is a comparable value: every
// class and every subclass of the standard catalog is exported as a
// package-level State, so decoded values can be matched with == or a switch:
//
//	st, err := sqlstate.Parse("23000")
//	if err != nil {
//		return err
//	}
//	switch st {
//	case sqlstate.IntegrityConstraintViolation:
//		...
//	}
//
// The subclass "000" is not an error: it means the code carries no detail
// beyond its class, and the resulting State has no subclass. A subclass that
// the class does not define degrades to the class-level State as well.
//
// Each State maps to a coarse outcome through Category: classes "00", "01"
// and "02" are success, warning and no data; everything else, including
// classes missing from the catalog, is an exception.
//
// Codes of unknown classes are rejected by Parse with ErrUnknownClass.
// ParseLenient keeps them as unrecognized States that still encode back to
// the original code.
//
// The Error type attaches a State to a message, structured details and an
// optional cause. The mapper, grpcx and httpx packages project it onto HTTP
// and gRPC responses, and dbx extracts States from database driver errors.
package sqlstate
