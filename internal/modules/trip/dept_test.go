package trip

import "testing"

func TestExtractDepartment(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    string
		wantOK  bool
	}{
		{"metropolitan", "12 cours Lafayette 69003 Lyon", "69", true},
		{"postal code first", "75011 Paris, 4 rue de la Roquette", "75", true},
		{"overseas reunion", "10 rue de Paris 97400 Saint-Denis", "974", true},
		{"overseas polynesia", "BP 115 98713 Papeete", "987", true},
		{"corsica south", "Quai l'Herminier 20000 Ajaccio", "2A", true},
		{"corsica north", "Place Saint-Nicolas 20200 Bastia", "2B", true},
		{"corsica boundary below", "20199 Somewhere", "2A", true},
		{"no postal code", "no code here", "", false},
		{"empty", "", "", false},
		{"too many digits is not a postal code", "SIRET 123456789", "", false},
		{"four digits only", "CH-1201 Geneve", "", false},
		{"code embedded mid-text", "Depart: Annecy (74000), retour tardif", "74", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractDepartment(tt.address)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ExtractDepartment(%q) = (%q, %v), want (%q, %v)",
					tt.address, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
