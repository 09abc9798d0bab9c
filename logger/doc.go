// This file is part of Apumix.
//
// Apumix is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Apumix is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Apumix.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log for the application. Log entries are
// tagged and kept in memory, up to a maximum number of entries. Repeated
// entries are folded into a single entry with a repeat count.
//
// Logging takes a Permission argument. A type can implement the Permission
// interface to decide for itself whether its log entries should be kept. The
// Allow value is used where there is no reason to ever refuse.
//
// Entries are not printed unless SetEcho() has been called with a non-nil
// io.Writer.
package logger
