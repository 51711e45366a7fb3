// Package flagval binds the validator package to CLI flag parsing. Each type
// implements the pflag.Value interface and rejects bad input at parse time,
// so a misconfigured invocation fails before the program does any work and
// the parser surfaces the validator's message to the user.
//
// # Usage
//
//	model := flagval.FilePath("")
//	depth := flagval.NewBoundedInt(1, 1, 10)
//	cmd.Flags().Var(&model, "embedding-model", "word embedding model path")
//	cmd.Flags().Var(depth, "lstm-depth", "deep BiLSTM depth")
//
// Range bounds follow the validator convention: inclusive minimum, exclusive
// maximum. Path values store the validated (absolutized where applicable)
// path, so reading the flag after parsing yields a path that is safe to use.
package flagval
