package tracking

import (
	"net"

	"github.com/oschwald/geoip2-golang"
)

// GeoResolver enriquece visualizações de página com país e cidade a partir
// de uma base GeoLite2 local. O enriquecimento é opcional: sem base
// configurada o resolver é nil e os campos ficam vazios.
type GeoResolver struct {
	reader *geoip2.Reader
}

func NewGeoResolver(dbPath string) (*GeoResolver, error) {
	reader, err := geoip2.Open(dbPath)
	if err != nil {
		return nil, err
	}
	return &GeoResolver{reader: reader}, nil
}

func (g *GeoResolver) Close() error {
	return g.reader.Close()
}

// Resolve retorna país e cidade do IP, em pt-BR quando disponível.
func (g *GeoResolver) Resolve(ip string) (country, city string) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "", ""
	}

	record, err := g.reader.City(parsed)
	if err != nil {
		return "", ""
	}

	if name, ok := record.Country.Names["pt-BR"]; ok {
		country = name
	} else {
		country = record.Country.Names["en"]
	}
	if name, ok := record.City.Names["pt-BR"]; ok {
		city = name
	} else {
		city = record.City.Names["en"]
	}
	return country, city
}
