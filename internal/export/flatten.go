package export

import (
	"strconv"

	"logisystem/internal/core"
)

// Transactions flattens transactions into export records. Nested details are
// folded into flat columns so the sheet stays one row per movement.
func Transactions(txs []core.Transaction) []Record {
	records := make([]Record, 0, len(txs))
	for _, tx := range txs {
		employeeName := ""
		if tx.Employee != nil {
			employeeName = tx.Employee.EmployeeName
		}
		providerName := ""
		if tx.Provider != nil {
			providerName = tx.Provider.ProviderName
		}
		records = append(records, Record{
			{Key: "id", Value: strconv.FormatInt(tx.ID, 10)},
			{Key: "fecha", Value: tx.Date},
			{Key: "tipo", Value: string(tx.Type)},
			{Key: "categoria", Value: string(tx.Category)},
			{Key: "patente", Value: tx.TruckPlate},
			{Key: "monto", Value: tx.Amount.Format()},
			{Key: "descripcion", Value: tx.Description},
			{Key: "cuenta", Value: tx.AccountName},
			{Key: "estado", Value: string(tx.Status)},
			{Key: "empleado", Value: employeeName},
			{Key: "proveedor", Value: providerName},
			{Key: "etiquetas", Value: tx.Tags},
		})
	}
	return records
}

func Trucks(trucks []core.Truck) []Record {
	records := make([]Record, 0, len(trucks))
	for _, t := range trucks {
		records = append(records, Record{
			{Key: "id", Value: strconv.FormatInt(t.ID, 10)},
			{Key: "patente", Value: t.Plate},
			{Key: "modelo", Value: t.Model},
			{Key: "propio", Value: strconv.FormatBool(t.IsOwn)},
			{Key: "proveedor", Value: t.ProviderName},
		})
	}
	return records
}

func Accounts(accounts []core.Account) []Record {
	records := make([]Record, 0, len(accounts))
	for _, a := range accounts {
		records = append(records, Record{
			{Key: "id", Value: strconv.FormatInt(a.ID, 10)},
			{Key: "nombre", Value: a.Name},
			{Key: "tipo", Value: string(a.Type)},
			{Key: "activa", Value: strconv.FormatBool(a.Active)},
		})
	}
	return records
}

func Employees(employees []core.Employee) []Record {
	records := make([]Record, 0, len(employees))
	for _, e := range employees {
		records = append(records, Record{
			{Key: "id", Value: strconv.FormatInt(e.ID, 10)},
			{Key: "nombre", Value: e.FullName},
			{Key: "rut", Value: e.NationalID},
			{Key: "nacimiento", Value: e.BirthDate},
			{Key: "cargo", Value: e.JobTitle},
		})
	}
	return records
}
