package portfolio

import (
	"bufio"
	"fmt"
	"io"
)

// NewPrompt 从 in 读取一行回答，读取失败视为拒绝
func NewPrompt(in io.Reader, out io.Writer) Confirm {
	reader := bufio.NewReader(in)
	return func(prompt string) bool {
		fmt.Fprint(out, prompt)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		return IsYes(line)
	}
}
