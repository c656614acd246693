// Package grovergo demonstrates Grover's quantum search by cracking short
// hashed passwords, racing a classical brute-force scan against a
// simulated quantum circuit.
//
// A password of length L over an alphabet of B symbols spans a search
// space of B^L candidates. The classical scan hashes candidates one by one
// and needs O(B^L) digests; Grover's algorithm amplifies the target
// amplitude and needs only O(sqrt(B^L)) oracle calls.
//
// # Quick Start
//
// Compare both approaches on the local simulator:
//
//	ctx := context.Background()
//	cr, _ := grovergo.New(alphabet.Default())
//	report, _ := cr.Compare(ctx, "ab", backend.NewLocal(nil))
//	fmt.Println(report.Classical.Result.Candidate, report.Quantum[0].Result.Outcome.Candidate)
//
// Analyze a space before committing to a run:
//
//	plan, _ := cr.Plan(ctx, 2)
//	fmt.Printf("%d candidates, %d qubits, %d iterations, p=%.3f\n",
//	    plan.Size, plan.Qubits, plan.Iterations, plan.SuccessProbability)
//
// # Backends
//
// Execution goes through the backend.Executor interface. backend.NewLocal
// wraps the in-process state-vector simulator; backend.NewRemote submits
// OpenQASM through an artifact store (S3, MinIO, local disk) and tracks
// job state in DynamoDB, for gateways that front real hardware.
//
// # Register Widths
//
// The circuit register holds 2^n states for the smallest n covering B^L.
// When B^L is not a power of two, measurements can land on indices outside
// the candidate space; these are reported as spurious outcomes, never
// decoded into candidates.
//
// # Key Features
//
//   - Exact state-vector simulation with seedable shot sampling
//   - Amplitude-domain evaluation and a closed-form success estimate
//   - Multi-target oracles backed by Roaring Bitmaps
//   - OpenQASM 2.0 export for external toolchains
//   - Parallel sharded brute force for the classical baseline
//   - Structured logging and pluggable metrics
package grovergo
