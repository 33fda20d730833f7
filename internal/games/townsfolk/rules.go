package townsfolk

// Rules is the how-to-play text shown by the menu and the rules command.
const Rules = `The town is a cube of N×N×N townsfolk, each loyal to faction ● or ◆.

On your turn pick one townsperson and convert them to the other faction.
Then everyone who is surrounded only by their own faction leaves town:
look from a townsperson in each of the six directions (left, right, up,
down, and one layer forward or back). The first person seen must share
their faction, or the look must reach the edge of the cube. Gaps left by
people who already moved out are looked through.

Departures can make others eligible, so leaving repeats until nobody else
goes. Everyone who leaves on your turn is collected by you.

When the town is empty the player who collected more townsfolk wins.
Equal collections are a tie.`
