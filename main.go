package main

import "github.com/physiofit/clinic_backend/cmd"

func main() {
	cmd.Execute()
}
