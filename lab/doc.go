// SPDX-License-Identifier: MIT

// Package lab runs the numerical exercises and prints their reports.
//
// Overview:
//
//   - Every exercise is registered once with four instantiations of its
//     generic kernel: native and stochastic arithmetic, single and double
//     precision. Env selects one at run time.
//   - Run prints a boxed banner, the exercise trace in the layout of the
//     classic lab programs, and, under stochastic arithmetic, the
//     instability report of the run.
//   - RunAll runs several exercises concurrently, each with its own
//     stochastic context and output buffer, and writes the buffers in order.
//
// Exercise kernels never print; everything visible is produced here.
package lab
