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

// Package digest is used to create mathematical hashes of the video output.
// The hashes are chained so that the digest for a frame depends on every
// preceeding frame since the digest was reset.
//
// Digests are used by the regression tests of the demonstration programs and
// by the FRAMES mode of the command line front end.
package digest
