// seed carga un conjunto de stocks y productos de demostración en el almacenamiento configurado.
//
// Uso: go run ./cmd/seed [-latin1] [ruta/stocks.csv]
// Sin archivo crea el stock de ejemplo (10 productos, el serial "5" reservado).
// El CSV tiene columnas: name,shortDescription,longDescription,price,serials (seriales separados por '|').
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/stock-api/internal/application/inventory"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/infrastructure/store"
	"github.com/jhoicas/stock-api/pkg/config"
	"github.com/jhoicas/stock-api/pkg/logger"
)

type seedStock struct {
	stock   *entity.Stock
	serials []string
}

func main() {
	latin1 := flag.Bool("latin1", false, "el CSV viene en ISO-8859-1")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	var rows []seedStock
	if flag.NArg() > 0 {
		rows, err = readCSV(flag.Arg(0), *latin1)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
			os.Exit(1)
		}
	} else {
		rows = []seedStock{demoStock()}
	}

	ctx := context.Background()
	st, err := store.Open(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir almacenamiento: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	uc := inventory.NewStockUseCase(st.TxRunner, st.Stocks, st.Products, log)
	products := 0
	for _, r := range rows {
		stock, err := uc.AddStock(ctx, r.stock)
		if err != nil {
			log.Fatal().Err(err).Str("name", r.stock.Name).Msg("crear stock")
		}
		added, err := uc.AddProducts(ctx, stock.ID, r.serials)
		products += len(added)
		if err != nil {
			log.Fatal().Err(err).Int("stock_id", stock.ID).Int("agregados", len(added)).Msg("agregar productos")
		}
	}

	// El demo deja un producto reservado para probar anular la reserva.
	if flag.NArg() == 0 {
		if err := uc.ReserveProduct(ctx, "5"); err != nil {
			log.Fatal().Err(err).Msg("reservar producto demo")
		}
	}

	fmt.Printf("Cargados %d stocks, %d productos (%s)\n", len(rows), products, cfg.Store.Driver)
}

// demoStock stock con 10 productos, seriales "1".."10".
func demoStock() seedStock {
	serials := make([]string, 0, 10)
	for i := 1; i <= 10; i++ {
		serials = append(serials, strconv.Itoa(i))
	}
	return seedStock{
		stock: &entity.Stock{
			Name:             "Lámpara LED",
			ShortDescription: "Lámpara de escritorio",
			LongDescription:  "Lámpara LED de escritorio con brazo articulado y tres niveles de brillo",
			Price:            decimal.RequireFromString("59.90"),
		},
		serials: serials,
	}
}

func readCSV(path string, latin1 bool) ([]seedStock, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var in io.Reader = f
	if latin1 {
		in = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	r := csv.NewReader(in)
	r.FieldsPerRecord = 5
	r.TrimLeadingSpace = true

	var out []seedStock
	for line := 1; ; line++ {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if line == 1 && strings.EqualFold(rec[0], "name") {
			continue // encabezado
		}
		price, err := decimal.NewFromString(strings.TrimSpace(rec[3]))
		if err != nil {
			return nil, fmt.Errorf("línea %d: precio %q: %w", line, rec[3], err)
		}
		var serials []string
		for _, s := range strings.Split(rec[4], "|") {
			if s = strings.TrimSpace(s); s != "" {
				serials = append(serials, s)
			}
		}
		out = append(out, seedStock{
			stock: &entity.Stock{
				Name:             strings.TrimSpace(rec[0]),
				ShortDescription: strings.TrimSpace(rec[1]),
				LongDescription:  strings.TrimSpace(rec[2]),
				Price:            price,
			},
			serials: serials,
		})
	}
	return out, nil
}
