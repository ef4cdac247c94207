package wmach

// buildProgram turns a raw statement list into a resolved Program:
// first every label is assigned the offset of the instruction that
// follows it (labels themselves do not occupy an offset), then each
// statement other than a label is translated into an Insn, with jmp
// targets resolved against the label table built in the first pass.
func buildProgram(ast *astProgram) (*Program, error) {
	labels := make(map[LabelID]InsnOffset)

	offset := 0
	for _, stmt := range ast.Stmts {
		if stmt.Label != nil {
			if _, ok := labels[stmt.Label.Name]; ok {
				return nil, &duplicateLabelError{label: stmt.Label.Name}
			}
			labels[stmt.Label.Name] = offset
			continue
		}
		offset++
	}

	insns := make([]Insn, 0, offset)
	pos := 0
	for _, stmt := range ast.Stmts {
		switch {
		case stmt.Label != nil:
			continue

		case stmt.Jmp != nil:
			trueOff, ok := labels[stmt.Jmp.True]
			if !ok {
				return nil, &unknownTargetError{offset: pos, target: stmt.Jmp.True}
			}

			falseOff := pos + 1
			if stmt.Jmp.False != nil {
				off, ok := labels[*stmt.Jmp.False]
				if !ok {
					return nil, &unknownTargetError{offset: pos, target: *stmt.Jmp.False}
				}
				falseOff = off
			}

			insns = append(insns, JmpInsn{True: trueOff, False: falseOff})

		case stmt.Write != nil:
			op := Set
			if stmt.Write.Op == "-" {
				op = Unset
			}
			insns = append(insns, WriteInsn{Op: op})

		case stmt.Seek != nil:
			op := Right
			if stmt.Seek.Op == "<" {
				op = Left
			}
			insns = append(insns, SeekInsn{Op: op})

		case stmt.Io != nil:
			op := Out
			if stmt.Io.Op == "," {
				op = In
			}
			insns = append(insns, IoInsn{Op: op})

		case stmt.Debug != nil:
			insns = append(insns, DebugInsn{})
		}
		pos++
	}

	return &Program{Instructions: insns, Labels: labels}, nil
}
