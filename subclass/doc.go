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

// Package subclass defines the optional three-character refinement of a
// SQLSTATE class.
//
// Where the class answers "what kind of outcome is this?" (warning, data
// exception, connection exception, ...), the subclass answers "which exact
// condition inside that class?", e.g. "005" under class "01" is "insufficient
// item descriptor areas".
//
// A subclass is meaningful only together with its class: "001" means
// something different under every class that defines it. The catalog that
// gives subclasses their names lives in the root sqlstate package; this
// package only owns the syntax.
//
// The subclass "000" (None) means "no further detail". It is valid and is the
// common case.
package subclass
