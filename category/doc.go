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

// Package category derives the coarse outcome of a SQLSTATE from its class.
//
// Every SQLSTATE falls into exactly one of four categories:
//
//   - Success: class "00";
//   - Warning: class "01";
//   - NoData: class "02";
//   - Exception: every other class, known or not.
//
// The partition is fixed and never depends on the subclass.
package category
