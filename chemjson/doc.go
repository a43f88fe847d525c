/*
 * doc.go, part of gostoich.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * gostoich is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

//Package chemjson implements serialization and unserialization of
//goStoich data types. Its planned use is the communication of goStoich
//with other, independent programs (i.e. a graphical front-end), which can be
//written in any language able to deal with JSON data.
//chemjson also implements the transmission of requests, so an external
//program can send formulas, equations and quantities to a goStoich program
//and later collect the results, for instance, via UNIX pipes, one JSON
//object per line.
package chemjson
