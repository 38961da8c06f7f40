// seed_maquinas genera el script SQL para poblar el catálogo de máquinas de
// planta a partir de un CSV exportado del ERP (codificado en ISO-8859-1,
// separado por punto y coma: nombre;cavidades).
//
// Uso: go run ./cmd/seed_maquinas [ruta/maquinas.csv]
// Sin argumento usa el catálogo por defecto de la planta (sopladoras ISBM e
// inyectoras INY).
// Escribe: internal/infrastructure/postgres/migrations/002_seed_machines.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type maquina struct {
	nombre   string
	cavities int
}

func main() {
	var machines []maquina
	if len(os.Args) > 1 {
		var err error
		machines, err = readCSV(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
			os.Exit(1)
		}
	} else {
		machines = defaultCatalog()
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_machines.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo de máquinas de planta\n")
	out.WriteString("-- Generado por cmd/seed_maquinas\n\n")
	for _, m := range machines {
		fmt.Fprintf(out, "INSERT INTO machines (id, name, status, cavities)\n")
		fmt.Fprintf(out, "VALUES (gen_random_uuid(), '%s', 'producing', %d)\n", escapeSQL(m.nombre), m.cavities)
		out.WriteString("ON CONFLICT (name) DO NOTHING;\n")
	}

	fmt.Printf("Generado %s: %d máquinas\n", outPath, len(machines))
}

// readCSV lee el catálogo exportado del ERP. El export viene en ISO-8859-1,
// de ahí el decoder antes del lector CSV.
func readCSV(path string) ([]maquina, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	var machines []maquina
	for _, row := range rows {
		if len(row) < 1 {
			continue
		}
		nombre := strings.TrimSpace(row[0])
		if nombre == "" || strings.EqualFold(nombre, "nombre") {
			continue
		}
		cavities := 0
		if len(row) > 1 {
			cavities, _ = strconv.Atoi(strings.TrimSpace(row[1]))
		}
		machines = append(machines, maquina{nombre: nombre, cavities: cavities})
	}
	return machines, nil
}

// defaultCatalog es el parque actual de la planta: sopladoras ISBM 3 a 12 e
// inyectoras INY 1 a 11.
func defaultCatalog() []maquina {
	var machines []maquina
	for i := 3; i <= 12; i++ {
		machines = append(machines, maquina{nombre: fmt.Sprintf("ISBM %d", i)})
	}
	for i := 1; i <= 11; i++ {
		machines = append(machines, maquina{nombre: fmt.Sprintf("INY %d", i)})
	}
	return machines
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
