// Command client is a terminal front end for the staffdesk API: a paginated,
// searchable employee list plus get/create/update/delete.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"staffdesk/internal/client"
	"staffdesk/internal/model"
	"staffdesk/internal/view"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	baseURL := os.Getenv("STAFFDESK_API_URL")
	api := client.New(baseURL)
	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "list":
		err = runList(ctx, api, os.Args[2:])
	case "get":
		err = runGet(ctx, api, os.Args[2:])
	case "create":
		err = runCreate(ctx, api, os.Args[2:])
	case "update":
		err = runUpdate(ctx, api, os.Args[2:])
	case "delete":
		err = runDelete(ctx, api, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: client <command> [flags]

commands:
  list    list employees (search/filter/sort/page)
  get     show one employee
  create  create an employee
  update  partially update an employee
  delete  delete an employee`)
}

func runList(ctx context.Context, api *client.API, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	search := fs.String("search", "", "case-insensitive match on name or email")
	department := fs.String("department", "", "filter by department")
	status := fs.String("status", "", "filter by status (active|inactive)")
	sortName := fs.Bool("sort", false, "sort by name")
	page := fs.Int("page", 1, "page number")
	_ = fs.Parse(args)

	list := view.NewList(api)
	if err := list.Load(ctx); err != nil {
		return err
	}
	list.SetSearch(*search)
	list.SetDepartmentFilter(*department)
	list.SetStatusFilter(model.Status(*status))
	list.SetSortByName(*sortName)
	list.SetPage(*page - 1)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPOSITION\tDEPARTMENT\tSTATUS")
	for _, e := range list.Rows() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.Name, e.Email, e.Position, e.Department, e.Status)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("page %d of %d (%d matching)\n", list.Page()+1, list.PageCount(), len(list.Visible()))
	return nil
}

func runGet(ctx context.Context, api *client.API, args []string) error {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	id := fs.Uint("id", 0, "employee id")
	_ = fs.Parse(args)

	detail := view.NewDetail(api)
	if err := detail.Load(ctx, uint(*id)); err != nil {
		return err
	}
	e := detail.Employee()
	fmt.Printf("Name:       %s\n", e.Name)
	fmt.Printf("Email:      %s\n", e.Email)
	fmt.Printf("Position:   %s\n", e.Position)
	fmt.Printf("Department: %s\n", e.Department)
	fmt.Printf("Status:     %s\n", e.Status)
	fmt.Printf("Salary:     %s\n", detail.FormattedSalary())
	fmt.Printf("Hire Date:  %s\n", detail.FormattedHireDate())
	return nil
}

func runCreate(ctx context.Context, api *client.API, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	name := fs.String("name", "", "employee name")
	email := fs.String("email", "", "email address")
	position := fs.String("position", "", "position")
	department := fs.String("department", "", "department ("+strings.Join(model.Departments, "|")+")")
	salary := fs.Float64("salary", 0, "salary")
	hireDate := fs.String("hire-date", "", "hire date (YYYY-MM-DD)")
	status := fs.String("status", string(model.StatusActive), "status (active|inactive)")
	_ = fs.Parse(args)

	form := view.NewForm(api)
	form.SetName(*name)
	form.SetEmail(*email)
	form.SetPosition(*position)
	form.SetDepartment(*department)
	form.SetSalary(*salary)
	form.SetStatus(*status)
	if *hireDate != "" {
		if err := form.SetHireDate(*hireDate); err != nil {
			return err
		}
	}

	if err := form.Submit(ctx); err != nil {
		reportFieldErrors(form)
		return err
	}
	fmt.Println("Employee created successfully")
	return nil
}

func runUpdate(ctx context.Context, api *client.API, args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	id := fs.Uint("id", 0, "employee id")
	name := fs.String("name", "", "employee name")
	email := fs.String("email", "", "email address")
	position := fs.String("position", "", "position")
	department := fs.String("department", "", "department")
	salary := fs.String("salary", "", "salary")
	hireDate := fs.String("hire-date", "", "hire date (YYYY-MM-DD)")
	status := fs.String("status", "", "status (active|inactive)")
	_ = fs.Parse(args)

	// Only flags given on the command line go into the patch; the server
	// keeps stored values for everything omitted.
	var patch model.EmployeePatch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			patch.Name = name
		case "email":
			patch.Email = email
		case "position":
			patch.Position = position
		case "department":
			patch.Department = department
		case "status":
			s := model.Status(*status)
			patch.Status = &s
		}
	})
	if *salary != "" {
		d, err := decimal.NewFromString(*salary)
		if err != nil {
			return fmt.Errorf("invalid salary: %w", err)
		}
		patch.Salary = &d
	}
	if *hireDate != "" {
		d, err := model.ParseDate(*hireDate)
		if err != nil {
			return err
		}
		patch.HireDate = &d
	}

	updated, err := api.UpdateEmployee(ctx, uint(*id), patch)
	if err != nil {
		return err
	}
	fmt.Printf("Employee updated successfully: %s <%s>\n", updated.Name, updated.Email)
	return nil
}

func runDelete(ctx context.Context, api *client.API, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.Uint("id", 0, "employee id")
	yes := fs.Bool("yes", false, "skip confirmation")
	_ = fs.Parse(args)

	list := view.NewList(api)
	list.RequestDelete(uint(*id))

	if !*yes {
		fmt.Printf("Are you sure to delete employee %d? [y/N] ", *id)
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
			list.CancelDelete()
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := list.ConfirmDelete(ctx); err != nil {
		return err
	}
	fmt.Println("Employee deleted")
	return nil
}

func reportFieldErrors(form *view.Form) {
	for field, msg := range form.FieldErrors() {
		fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
	}
}
