package yamlbatch

type yamlBatch struct {
	Name    string       `yaml:"name"`
	Tickets []yamlTicket `yaml:"tickets"`
}

type yamlTicket struct {
	Passenger string `yaml:"passenger"`
	Miles     *int   `yaml:"miles"`
	Elite     bool   `yaml:"elite"`
}
