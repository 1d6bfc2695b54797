// seed genera un script SQL con categorías y productos de demostración
// para cargar datos iniciales en un ambiente local.
//
// Uso: go run ./cmd/seed
// Escribe: internal/infrastructure/postgres/migrations/003_seed_demo.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type demoCategory struct {
	code, name, description string
}

type demoProduct struct {
	code, name, description string
	price                   string
	stock                   int
	categoryCode            string
}

var categories = []demoCategory{
	{"CAT-BEB", "Bebidas", "Bebidas frías y calientes"},
	{"CAT-LAC", "Lácteos", "Leche, quesos y derivados"},
	{"CAT-ABA", "Abarrotes", "Productos de despensa"},
}

var products = []demoProduct{
	{"PRD-001", "Agua mineral 600ml", "Botella individual", "1.50", 120, "CAT-BEB"},
	{"PRD-002", "Jugo de naranja 1L", "Jugo natural pasteurizado", "3.25", 48, "CAT-BEB"},
	{"PRD-003", "Leche entera 1L", "Leche UHT", "2.10", 60, "CAT-LAC"},
	{"PRD-004", "Queso fresco 500g", "Queso artesanal", "5.80", 25, "CAT-LAC"},
	{"PRD-005", "Arroz 1kg", "Grano largo", "1.95", 200, "CAT-ABA"},
	{"PRD-006", "Aceite vegetal 1L", "Aceite de girasol", "4.40", 80, "CAT-ABA"},
}

func main() {
	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "003_seed_demo.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Datos de demostración: categorías y productos\n")
	out.WriteString("-- Generado con go run ./cmd/seed\n\n")

	out.WriteString("-- 1. Categorías\n")
	for _, c := range categories {
		fmt.Fprintf(out, "INSERT INTO product_categories (id, code, name, description, created_at, updated_at)\n")
		fmt.Fprintf(out, "VALUES (gen_random_uuid()::text, '%s', '%s', '%s', now(), now())\n",
			c.code, escapeSQL(c.name), escapeSQL(c.description))
		out.WriteString("ON CONFLICT (code) DO NOTHING;\n")
	}
	out.WriteString("\n-- 2. Productos (resuelven su categoría por código)\n")
	for _, p := range products {
		fmt.Fprintf(out, "INSERT INTO products (id, code, name, description, price, stock, category_id, created_at, updated_at)\n")
		fmt.Fprintf(out, "SELECT gen_random_uuid()::text, '%s', '%s', '%s', %s, %d, id, now(), now()\n",
			p.code, escapeSQL(p.name), escapeSQL(p.description), p.price, p.stock)
		fmt.Fprintf(out, "FROM product_categories WHERE code = '%s'\n", p.categoryCode)
		out.WriteString("ON CONFLICT (code) DO NOTHING;\n")
	}

	fmt.Printf("Generado %s: %d categorías, %d productos\n", outPath, len(categories), len(products))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
