package parse

import "fmt"

// checkParseTree checks whether the parse tree part of a Node is well-formed:
// children know their parent, and their ranges are contiguous and cover the
// parent's range exactly.
func checkParseTree(n Node) error {
	children := Children(n)
	if len(children) == 0 {
		return nil
	}

	for i, ch := range children {
		if Parent(ch) != n {
			return fmt.Errorf("parent of child %d (%s) is wrong: %s",
				i, summary(ch), summary(n))
		}
	}

	if children[0].Range().From != n.Range().From {
		return fmt.Errorf("gap between node and first child: %s", summary(n))
	}
	nch := len(children)
	if children[nch-1].Range().To != n.Range().To {
		return fmt.Errorf("gap between node and last child: %s", summary(n))
	}
	for i := 0; i < nch-1; i++ {
		if children[i].Range().To != children[i+1].Range().From {
			return fmt.Errorf("gap between child %d and %d of: %s", i, i+1, summary(n))
		}
	}

	for _, ch := range children {
		if err := checkParseTree(ch); err != nil {
			return err
		}
	}
	return nil
}
