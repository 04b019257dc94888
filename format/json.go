package format

import (
	"encoding/json"
	"io"

	"github.com/swedgwood/earley-parser/earley"
)

type JSONEncoder[N, T comparable] struct {
	w     io.Writer
	trees []*earley.Tree[N, T]
}

func NewJSONEncoder[N, T comparable](w io.Writer) *JSONEncoder[N, T] {
	return &JSONEncoder[N, T]{w: w}
}

func (e *JSONEncoder[N, T]) Encode(trees []*earley.Tree[N, T]) error {
	e.trees = trees
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder[N, T]) MarshalText() ([]byte, error) {
	data := make([]jsonNode, len(e.trees))
	for i, t := range e.trees {
		data[i] = buildNode(t)
	}
	return json.MarshalIndent(data, "", "  ")
}

type jsonNode struct {
	Symbol   string     `json:"symbol"`
	Terminal bool       `json:"terminal,omitempty"`
	Children []jsonNode `json:"children,omitempty"`
}

func buildNode[N, T comparable](t *earley.Tree[N, T]) jsonNode {
	node := jsonNode{Symbol: t.Symbol.String(), Terminal: t.Symbol.IsTerminal()}
	for _, c := range t.Children {
		node.Children = append(node.Children, buildNode(c))
	}
	return node
}
