package renderer

import (
	"bytes"

	"github.com/ljstore/store"
	md "github.com/nao1215/markdown"
)

// CustomersMarkdown renders the customer list.
func CustomersMarkdown(customers []store.Customer) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Clientes")
	if len(customers) == 0 {
		doc.PlainText("Nenhum cliente cadastrado.")
		return doc.String()
	}

	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []string{c.Name, c.Email, c.Phone})
	}
	doc.Table(md.TableSet{
		Header: []string{"Nome", "Email", "Telefone"},
		Rows:   rows,
	})

	return doc.String()
}
