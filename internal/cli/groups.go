package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/avasiljevs/linkstorage/internal/models"
)

func (a *App) pageGroups(ctx context.Context) error {
	a.groupStore.FetchGroups(ctx, models.ListParams{PageSize: a.config.PageSize})

	groups := a.groupStore.Groups()
	if len(groups) == 0 {
		fmt.Println("No link groups yet. Use add to create one.")
		return nil
	}

	for _, g := range groups {
		fmt.Printf("%4d  %-20s %-7s %s\n", g.ID, g.Name, g.Color, g.Description)
	}

	p := a.groupStore.Pagination()
	fmt.Printf("page %d/%d, %d total\n", p.Page, p.TotalPages, p.Total)
	return nil
}

func (a *App) pageGroupCreate(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Group name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	color, err := getSimpleText(a.reader, "Color (e.g. #ff8800)", os.Stdout)
	if err != nil {
		return err
	}

	req := models.LinkGroupCreate{Name: name, Description: description, Color: color}
	group, err := a.groupStore.CreateGroup(ctx, req)
	if err != nil {
		log.Printf("Create unsuccessful: %s", a.groupStore.Err())
		return nil
	}

	fmt.Printf("Created group %d (%s)\n", group.ID, group.Name)
	return nil
}

func (a *App) pageGroupEdit(ctx context.Context, idParam string) error {
	id, err := strconv.Atoi(idParam)
	if err != nil {
		fmt.Println("Usage: edit <numeric id>")
		return nil
	}

	if err := a.groupStore.FetchGroupByID(ctx, id); err != nil {
		log.Printf("Load unsuccessful: %s", a.groupStore.Err())
		return nil
	}
	current := a.groupStore.CurrentGroup()

	name, err := getTextWithDefault(a.reader, "Group name", current.Name, os.Stdout)
	if err != nil {
		return err
	}
	description, err := getTextWithDefault(a.reader, "Description", current.Description, os.Stdout)
	if err != nil {
		return err
	}
	color, err := getTextWithDefault(a.reader, "Color", current.Color, os.Stdout)
	if err != nil {
		return err
	}

	req := models.LinkGroupUpdate{ID: id, Name: name, Description: description, Color: color}
	group, err := a.groupStore.UpdateGroup(ctx, req)
	if err != nil {
		log.Printf("Update unsuccessful: %s", a.groupStore.Err())
		return nil
	}

	fmt.Printf("Updated group %d (%s)\n", group.ID, group.Name)
	return nil
}

// RemoveGroup deletes a group by id. Not a page: the web client triggers
// deletion from the listing, so the REPL exposes it as a direct command.
func (a *App) RemoveGroup(ctx context.Context, idParam string) error {
	id, err := strconv.Atoi(idParam)
	if err != nil {
		fmt.Println("Usage: rm <numeric id>")
		return nil
	}

	if err := a.groupStore.DeleteGroup(ctx, id); err != nil {
		log.Printf("Delete unsuccessful: %s", a.groupStore.Err())
		return nil
	}

	fmt.Printf("Deleted group %d\n", id)
	return nil
}
